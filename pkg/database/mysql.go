package database

import (
	"ClipFlow.com/cmd/model"
	"ClipFlow.com/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

// Init init DB
func Init() (*gorm.DB, error) {
	c := config.ConfigInfo.Mysql
	dsn := c.Username + ":" + c.Password + "@tcp(" + c.Addr + ")/" + c.Database +
		"?charset=" + c.Charset + "&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
		},
	)
	if err != nil {
		return nil, err
	}
	if err = db.Use(gormopentracing.New()); err != nil {
		return nil, err
	}

	// 唯一索引由模型tag声明 关注边/点赞记录的唯一性依赖这里的约束而非先查后插
	if err = db.AutoMigrate(
		&model.User{},
		&model.Follow{},
		&model.Video{},
		&model.VideoLike{},
		&model.Comment{},
		&model.LiveStream{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
