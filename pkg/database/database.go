package database

import (
	"fmt"
	"git_quiz_backend/internal/config"
	"git_quiz_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认跳过自动迁移，结构变更需要显式带 -migrate 启动
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.QuizStep{},
			&model.QuizQuestion{},
			&model.QuizSubmission{},
			&model.UserRanking{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")
	}

	// 课程表为空时写入内置的 Git 入门课程
	var stepCount int64
	db.Model(&model.QuizStep{}).Count(&stepCount)
	if stepCount == 0 {
		for _, step := range model.DefaultCurriculum() {
			s := step
			if err := db.Create(&s).Error; err != nil {
				return nil, fmt.Errorf("seed curriculum: %w", err)
			}
		}
		log.Println("Default curriculum seeded")
	}

	return db, nil
}
