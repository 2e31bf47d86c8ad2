package ftracker_test

import (
	"testing"

	ftracker "github.com/A-Rogachev/hw-python-oop"
	"github.com/A-Rogachev/hw-python-oop/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoMessageString(t *testing.T) {
	tests := []struct {
		name string
		info ftracker.InfoMessage
		want string
	}{
		{
			name: "плавание",
			info: ftracker.InfoMessage{
				TrainingType: "Swimming",
				Duration:     1,
				Distance:     0.9936,
				Speed:        1,
				Calories:     336,
			},
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name: "округление до тысячных",
			info: ftracker.InfoMessage{
				TrainingType: "Running",
				Duration:     1.23456,
				Distance:     9.8767,
				Speed:        8.0004,
				Calories:     699.9999,
			},
			want: "Тип тренировки: Running; Длительность: 1.235 ч.; Дистанция: 9.877 км; Ср. скорость: 8.000 км/ч; Потрачено ккал: 700.000.",
		},
		{
			name: "нулевые значения",
			info: ftracker.InfoMessage{TrainingType: "Swimming"},
			want: "Тип тренировки: Swimming; Длительность: 0.000 ч.; Дистанция: 0.000 км; Ср. скорость: 0.000 км/ч; Потрачено ккал: 0.000.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String(), "Сообщение о тренировке не совпадает с шаблоном")
		})
	}
}

func TestTrainingInfoIdempotent(t *testing.T) {
	training := ftracker.NewRunning(random.Action(), random.Duration()+0.5, random.Weight())

	first, err := training.TrainingInfo()
	require.NoError(t, err)
	second, err := training.TrainingInfo()
	require.NoError(t, err)

	assert.Equal(t, first, second, "Повторный расчет по одной тренировке должен давать ту же сводку")
	assert.Equal(t, first.String(), second.String(), "Повторный вызов String должен возвращать ту же строку")
}
