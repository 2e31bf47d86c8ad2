// Package ftracker рассчитывает статистику тренировок по данным от блока
// датчиков фитнес-трекера: пройденную дистанцию, среднюю скорость и
// количество потраченных килокалорий для плавания, бега и спортивной ходьбы.
package ftracker

const (
	lenStep = 0.65 // длина одного шага в метрах
	mInKm   = 1000 // количество метров в одном километре
	minInH  = 60   // количество минут в одном часе
)

// CaloriesCalculator объединяет виды тренировок, для которых трекер умеет
// рассчитывать статистику. Каждый вид встраивает Training и переопределяет
// SpentCalories и TrainingInfo собственным расчетом.
type CaloriesCalculator interface {
	Distance() float64
	MeanSpeed() float64
	SpentCalories() (float64, error)
	TrainingInfo() (InfoMessage, error)
}

// Training содержит общие для всех видов тренировок показания датчиков.
// Значения не меняются после создания; одну тренировку можно использовать
// из нескольких горутин одновременно.
type Training struct {
	TrainingType string  // вид тренировки
	Action       int     // количество шагов или гребков
	LenStep      float64 // длина одного шага или гребка в метрах
	Duration     float64 // длительность тренировки в часах
	Weight       float64 // вес пользователя в килограммах
}

// Distance возвращает дистанцию в километрах, которую пользователь преодолел
// за тренировку.
func (t Training) Distance() float64 {
	return float64(t.Action) * t.LenStep / mInKm
}

// MeanSpeed возвращает среднюю скорость движения в км/ч.
func (t Training) MeanSpeed() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return t.Distance() / t.Duration
}

// SpentCalories возвращает количество потраченных килокалорий.
// Расчет зависит от вида тренировки, поэтому базовый тип всегда возвращает
// NotImplementedError.
func (t Training) SpentCalories() (float64, error) {
	return 0, &NotImplementedError{TrainingType: t.TrainingType, Method: "SpentCalories"}
}

// TrainingInfo возвращает итоговую информацию о тренировке.
// Ошибка SpentCalories передается вызывающему как есть.
func (t Training) TrainingInfo() (InfoMessage, error) {
	calories, err := t.SpentCalories()
	if err != nil {
		return InfoMessage{}, err
	}
	return t.info(t.MeanSpeed(), calories), nil
}

// info собирает InfoMessage из общих показаний и уже рассчитанных скорости
// и калорий.
func (t Training) info(speed, calories float64) InfoMessage {
	return InfoMessage{
		TrainingType: t.TrainingType,
		Duration:     t.Duration,
		Distance:     t.Distance(),
		Speed:        speed,
		Calories:     calories,
	}
}
