package main

// Пакет собирается командой go test -c в бинарный файл с приемочными
// тестами (см. main_test.go); пустая функция main нужна только для того,
// чтобы go build ./... успешно компоновал пакет.
func main() {}
