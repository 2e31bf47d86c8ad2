package ftracker

import "fmt"

// infoTemplate задает формат итогового сообщения о тренировке.
// Все числовые значения выводятся с точностью до тысячных.
const infoTemplate = "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f."

// InfoMessage содержит итоговую информацию о прошедшей тренировке.
type InfoMessage struct {
	TrainingType string  // вид тренировки
	Duration     float64 // длительность в часах
	Distance     float64 // дистанция в километрах
	Speed        float64 // средняя скорость в км/ч
	Calories     float64 // количество потраченных килокалорий
}

// String возвращает сообщение о тренировке, подставляя значения в шаблон
// infoTemplate.
func (i InfoMessage) String() string {
	return fmt.Sprintf(infoTemplate,
		i.TrainingType,
		i.Duration,
		i.Distance,
		i.Speed,
		i.Calories,
	)
}
