package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/pos_backend/pkg/validate"
)

// CLI-приложение для валидации заказов перед загрузкой.
// Позиции принимаются и в формате экспорта API ({"menu_item","count"}),
// и в формате киоск-сообщений ([id, count]); вывод всегда канонический.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	orderValidator := validate.NewOrderValidator()

	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	path := *inputPath
	if path == "" {
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
		path = "/dev/stdin"
	}

	summary, err := validate.ValidateFile(ctx, orderValidator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
