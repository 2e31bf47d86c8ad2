package main

import "flag"

var (
	flagTrackerBinaryPath string // путь до бинарного файла трекера
)

func init() {
	flag.StringVar(&flagTrackerBinaryPath, "binary-path", "", "path to tracker binary")
}
