package ftracker

const (
	runningCaloriesMeanSpeedMultiplier = 18 // множитель средней скорости бега
	runningCaloriesMeanSpeedShift      = 20 // вычитаемое из произведения множителя и скорости
)

// Running описывает тренировку «Бег».
type Running struct {
	Training
}

// NewRunning возвращает тренировку Running по показаниям датчиков:
// количеству шагов, длительности в часах и весу пользователя в килограммах.
func NewRunning(action int, duration, weight float64) Running {
	return Running{
		Training: Training{
			TrainingType: "Running",
			Action:       action,
			LenStep:      lenStep,
			Duration:     duration,
			Weight:       weight,
		},
	}
}

// SpentCalories возвращает количество килокалорий, потраченных за бег.
func (r Running) SpentCalories() (float64, error) {
	speed := r.MeanSpeed()
	return (runningCaloriesMeanSpeedMultiplier*speed - runningCaloriesMeanSpeedShift) * r.Weight / mInKm * r.Duration * minInH, nil
}

// TrainingInfo возвращает итоговую информацию о пробежке.
func (r Running) TrainingInfo() (InfoMessage, error) {
	calories, err := r.SpentCalories()
	if err != nil {
		return InfoMessage{}, err
	}
	return r.info(r.MeanSpeed(), calories), nil
}
