package database

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var C *gorm.DB

func NewGorm() error {
	var err error
	C, err = gorm.Open(postgres.Open(viper.GetString("database.dsn")), &gorm.Config{
		Logger: logger.New(&log.Logger, logger.Config{
			LogLevel: logger.Error,
		}),
	})

	return err
}
