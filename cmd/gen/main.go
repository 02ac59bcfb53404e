package main

import (
	"pagecast/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.BusinessModel{},
		model.UpdateModel{},
		model.GeneratedPageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
