package ftracker

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035 // множитель веса пользователя
	walkingSpeedHeightMultiplier    = 0.029 // множитель отношения квадрата скорости к росту
)

// SportsWalking описывает тренировку «Спортивная ходьба».
type SportsWalking struct {
	Training
	Height float64 // рост пользователя в сантиметрах
}

// NewSportsWalking возвращает тренировку SportsWalking по показаниям
// датчиков: количеству шагов, длительности в часах, весу пользователя в
// килограммах и росту в сантиметрах. Рост должен быть больше нуля.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		Training: Training{
			TrainingType: "SportsWalking",
			Action:       action,
			LenStep:      lenStep,
			Duration:     duration,
			Weight:       weight,
		},
		Height: height,
	}
}

// SpentCalories возвращает количество килокалорий, потраченных за ходьбу.
// Квадрат средней скорости делится на рост нацело.
func (w SportsWalking) SpentCalories() (float64, error) {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.Weight +
		math.Floor(speed*speed/w.Height)*walkingSpeedHeightMultiplier*w.Weight) * w.Duration * minInH, nil
}

// TrainingInfo возвращает итоговую информацию о прогулке.
func (w SportsWalking) TrainingInfo() (InfoMessage, error) {
	calories, err := w.SpentCalories()
	if err != nil {
		return InfoMessage{}, err
	}
	return w.info(w.MeanSpeed(), calories), nil
}
