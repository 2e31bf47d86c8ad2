package ftracker

const (
	swimmingLenStep                  = 1.38 // длина одного гребка в метрах
	swimmingCaloriesMeanSpeedShift   = 1.1  // слагаемое средней скорости
	swimmingCaloriesWeightMultiplier = 2    // множитель веса пользователя
)

// Swimming описывает тренировку «Плавание».
type Swimming struct {
	Training
	LengthPool int // длина бассейна в метрах
	CountPool  int // сколько раз пользователь переплыл бассейн
}

// NewSwimming возвращает тренировку Swimming по показаниям датчиков:
// количеству гребков, длительности в часах, весу пользователя в килограммах,
// длине бассейна в метрах и количеству заплывов.
func NewSwimming(action int, duration, weight float64, lengthPool, countPool int) Swimming {
	return Swimming{
		Training: Training{
			TrainingType: "Swimming",
			Action:       action,
			LenStep:      swimmingLenStep,
			Duration:     duration,
			Weight:       weight,
		},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

// MeanSpeed возвращает среднюю скорость плавания в км/ч. В отличие от
// остальных видов тренировок скорость считается не по шагам, а по длине
// бассейна и количеству заплывов.
func (s Swimming) MeanSpeed() float64 {
	if s.Duration == 0 {
		return 0
	}
	return float64(s.LengthPool) * float64(s.CountPool) / mInKm / s.Duration
}

// SpentCalories возвращает количество килокалорий, потраченных за плавание.
func (s Swimming) SpentCalories() (float64, error) {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight, nil
}

// TrainingInfo возвращает итоговую информацию о заплыве.
func (s Swimming) TrainingInfo() (InfoMessage, error) {
	calories, err := s.SpentCalories()
	if err != nil {
		return InfoMessage{}, err
	}
	return s.info(s.MeanSpeed(), calories), nil
}
