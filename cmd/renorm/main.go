package main

import (
	"log"

	"go.uber.org/zap"

	"renormising/internal/config"
	"renormising/internal/renormdb"
	"renormising/internal/report"
)

func main() {
	logger, err := zap.NewDevelopment() // or NewProduction, or NewDevelopment
	if err != nil {
		log.Fatal(err)
	}
	sugar := logger.Sugar()

	conf := config.NewConfig()

	survey := renormdb.NewSurvey(logger)
	survey.Run()

	if err := report.SaveTable(conf.TableFile, survey); err != nil {
		sugar.Fatalw("save table", "file", conf.TableFile, "err", err)
	}
	if err := report.SaveSums(conf.RenormFile, survey); err != nil {
		sugar.Fatalw("save sums", "file", conf.RenormFile, "err", err)
	}

	sugar.Infow("artifacts written",
		"Guid", survey.Guid(),
		"table", conf.TableFile,
		"renorm", conf.RenormFile,
	)
}
