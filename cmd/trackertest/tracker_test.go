package main

import (
	"strings"

	"github.com/stretchr/testify/suite"
)

// expectedLines это строки, которые трекер печатает для встроенного набора
// пакетов данных.
var expectedLines = []string{
	"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
	"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
	"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
}

type TrackerSuite struct {
	suite.Suite
}

// SetupSuite подготавливает необходимые зависимости
func (suite *TrackerSuite) SetupSuite() {
	if flagTrackerBinaryPath == "" {
		suite.T().Skip("флаг -binary-path не задан")
	}
}

// TestReferenceOutput проверяет, что трекер печатает по одной строке на
// каждый пакет данных в порядке поступления и завершается с нулевым кодом
func (suite *TrackerSuite) TestReferenceOutput() {
	e := New(suite.T())
	run := RunTracker(e)

	e.Equalf(0, run.ExitCode, "Ненулевой код возврата процесса: %d", run.ExitCode)

	stdout := strings.TrimRight(string(run.Stdout), "\n")
	lines := strings.Split(stdout, "\n")
	e.Require.Len(lines, len(expectedLines), "Трекер должен печатать по одной строке на каждый пакет данных")

	for i, expected := range expectedLines {
		e.Equalf(expected, lines[i], "Строка %d вывода не совпадает с ожидаемой", i+1)
	}
}

// TestStderrEmpty проверяет, что при успешной обработке пакетов трекер
// ничего не пишет в лог ошибок
func (suite *TrackerSuite) TestStderrEmpty() {
	e := New(suite.T())
	run := RunTracker(e)

	e.Empty(string(run.Stderr), "При успешной обработке пакетов лог ошибок должен быть пустым")
}
