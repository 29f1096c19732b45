package database

import (
	"fmt"
	"log"

	"team_goal_tracker/internal/config"
	"team_goal_tracker/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 建立数据库连接并执行迁移。
// 日期列统一存 UTC 午夜，loc 必须为 UTC，否则驱动会按时区换算参数，
// date = ? 的等值比较在非 UTC 主机上会落空。
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate 迁移表结构并在成员表为空时写入默认团队成员
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.TeamMember{},
		&model.Goal{},
		&model.Mood{},
	)
	if err != nil {
		return err
	}

	var count int64
	db.Model(&model.TeamMember{}).Count(&count)
	if count == 0 {
		defaultMembers := []string{"Alice", "Bob", "Carol", "Dave"}
		for _, name := range defaultMembers {
			db.Create(&model.TeamMember{Name: name})
		}
	}

	return nil
}
