package main

//go:generate go build -o=../../bin/tracker

import (
	"fmt"
	"os"

	ftracker "github.com/A-Rogachev/hw-python-oop"
)

// trainingPackage это один пакет данных от блока датчиков: код вида
// тренировки и показания.
type trainingPackage struct {
	workoutType string
	data        []float64
}

// packages имитирует показания, полученные от блока датчиков фитнес-трекера.
var packages = []trainingPackage{
	{"SWM", []float64{720, 1, 80, 25, 40}},
	{"RUN", []float64{15000, 1, 75}},
	{"WLK", []float64{9000, 1, 75, 180}},
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "tracker: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	for _, p := range packages {
		training, err := ftracker.ReadPackage(p.workoutType, p.data)
		if err != nil {
			fatalf("не удалось прочитать пакет %q: %v", p.workoutType, err)
		}

		info, err := training.TrainingInfo()
		if err != nil {
			fatalf("не удалось рассчитать статистику тренировки %q: %v", p.workoutType, err)
		}

		fmt.Println(info)
	}
}
