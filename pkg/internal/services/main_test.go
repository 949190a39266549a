package services_test

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yatube/server/pkg/internal/cache"
	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/security"
	"github.com/yatube/server/pkg/internal/services"
)

func TestMain(m *testing.M) {
	source, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		panic(err)
	}
	database.C = source
	if err := database.RunMigration(database.C); err != nil {
		panic(err)
	}

	if err := cache.NewStore(); err != nil {
		panic(err)
	}

	services.Reader, err = security.NewTokenReader("test-secret", time.Minute, time.Hour)
	if err != nil {
		panic(err)
	}

	media, err := os.MkdirTemp("", "yatube-media")
	if err != nil {
		panic(err)
	}
	viper.Set("media.root", media)

	code := m.Run()
	os.RemoveAll(media)
	os.Exit(code)
}
