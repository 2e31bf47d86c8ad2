package random

// Action возвращает случайное количество шагов или гребков.
func Action() int {
	return int(rnd.Int63n(10000-1000) + 1000)
}

// Duration возвращает случайную длительность тренировки в часах.
func Duration() float64 {
	return float64(rnd.Int63n(3)) + rnd.Float64()
}

// Weight возвращает случайный вес пользователя в килограммах.
func Weight() float64 {
	return float64(rnd.Int63n(140-80) + 80)
}

// Height возвращает случайный рост пользователя в сантиметрах.
func Height() float64 {
	return float64(rnd.Int63n(220-150) + 150)
}

// LengthPool возвращает случайную длину бассейна в метрах.
func LengthPool() int {
	return int(rnd.Int63n(50-10) + 10)
}

// CountPool возвращает случайное количество заплывов.
func CountPool() int {
	return int(rnd.Int63n(10-1) + 1)
}
