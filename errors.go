package ftracker

import (
	"errors"
	"fmt"
)

// ErrUnknownTrainingType возвращается из ReadPackage, когда код вида
// тренировки отсутствует в таблице TrainingTypes.
var ErrUnknownTrainingType = errors.New("запрашиваемый тип тренировки отсутствует в БД фитнесс-трекера")

// ArgsCountError возвращается из ReadPackage, когда количество показаний в
// пакете данных не совпадает с ожидаемым для данного вида тренировки.
type ArgsCountError struct {
	WorkoutType string // код вида тренировки
	Want        int    // сколько показаний ожидает конструктор
	Got         int    // сколько показаний пришло в пакете
}

func (e *ArgsCountError) Error() string {
	return fmt.Sprintf("неверное количество параметров для тренировки %q: ожидается %d, получено %d", e.WorkoutType, e.Want, e.Got)
}

// NotImplementedError возвращается базовым типом Training вместо расчета
// калорий: метод расчета должен быть переопределен для каждого вида
// тренировки.
type NotImplementedError struct {
	TrainingType string
	Method       string
}

func (e *NotImplementedError) Error() string {
	trainingType := e.TrainingType
	if trainingType == "" {
		trainingType = "Training"
	}
	return fmt.Sprintf("в типе %s не переопределен метод %s", trainingType, e.Method)
}
