package ftracker

import "fmt"

// TrainingFactory связывает код вида тренировки с конструктором и ожидаемым
// количеством показаний в пакете данных.
type TrainingFactory struct {
	ArgsCount int
	New       func(data []float64) CaloriesCalculator
}

// TrainingTypes сопоставляет коды видов тренировок, которые присылает блок
// датчиков, с конструкторами. Новый вид тренировки подключается добавлением
// кода и конструктора в таблицу.
var TrainingTypes = map[string]TrainingFactory{
	"SWM": {
		ArgsCount: 5,
		New: func(data []float64) CaloriesCalculator {
			return NewSwimming(int(data[0]), data[1], data[2], int(data[3]), int(data[4]))
		},
	},
	"RUN": {
		ArgsCount: 3,
		New: func(data []float64) CaloriesCalculator {
			return NewRunning(int(data[0]), data[1], data[2])
		},
	},
	"WLK": {
		ArgsCount: 4,
		New: func(data []float64) CaloriesCalculator {
			return NewSportsWalking(int(data[0]), data[1], data[2], data[3])
		},
	},
}

// ReadPackage создает тренировку из одного пакета данных: по коду
// workoutType выбирается вид тренировки, показания data передаются его
// конструктору. Для неизвестного кода возвращается ErrUnknownTrainingType,
// при несовпадении количества показаний возвращается ArgsCountError.
func ReadPackage(workoutType string, data []float64) (CaloriesCalculator, error) {
	factory, ok := TrainingTypes[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrainingType, workoutType)
	}
	if len(data) != factory.ArgsCount {
		return nil, &ArgsCountError{WorkoutType: workoutType, Want: factory.ArgsCount, Got: len(data)}
	}
	return factory.New(data), nil
}
