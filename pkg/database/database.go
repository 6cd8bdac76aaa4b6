package database

import (
	"fmt"
	"log"

	"javacert_backend/internal/config"
	"javacert_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_busy_timeout=%d&_foreign_keys=on", cfg.Path, cfg.BusyTimeout)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Topic{},
		&model.Question{},
		&model.ReviewSession{},
		&model.ReviewAttempt{},
		&model.TopicMastery{},
		&model.QuizResult{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认主题目录（OCP 考纲），首次启动时插入
	var count int64
	db.Model(&model.Topic{}).Count(&count)
	if count == 0 {
		defaultTopics := []model.Topic{
			{Code: "oop-basics", Domain: "Java基础", Name: "面向对象基础", Description: "类、对象、封装与构造器", Order: 1, Enabled: true},
			{Code: "inheritance", Domain: "Java基础", Name: "继承与多态", Description: "继承、方法重写、类型转换", Order: 2, Enabled: true},
			{Code: "interfaces", Domain: "Java基础", Name: "接口与抽象类", Description: "接口、默认方法、抽象类", Order: 3, Enabled: true},
			{Code: "records-sealed", Domain: "Java基础", Name: "记录类与密封类", Description: "record、sealed 及模式匹配", Order: 4, Enabled: true},
			{Code: "exceptions", Domain: "异常与断言", Name: "异常处理", Description: "受检/非受检异常、try-with-resources", Order: 5, Enabled: true},
			{Code: "generics", Domain: "集合与泛型", Name: "泛型", Description: "泛型类型、通配符与边界", Order: 6, Enabled: true},
			{Code: "collections", Domain: "集合与泛型", Name: "集合框架", Description: "List/Set/Map/Queue 及常用实现", Order: 7, Enabled: true},
			{Code: "lambda", Domain: "函数式编程", Name: "Lambda 表达式", Description: "函数式接口与方法引用", Order: 8, Enabled: true},
			{Code: "streams", Domain: "函数式编程", Name: "Stream API", Description: "流水线、收集器与归约", Order: 9, Enabled: true},
			{Code: "concurrency", Domain: "并发", Name: "并发编程", Description: "线程、ExecutorService、并发集合", Order: 10, Enabled: true},
			{Code: "io-nio", Domain: "I/O 与持久化", Name: "I/O 与 NIO.2", Description: "流式 I/O、Path 与 Files", Order: 11, Enabled: true},
			{Code: "jdbc", Domain: "I/O 与持久化", Name: "JDBC", Description: "连接、语句与结果集", Order: 12, Enabled: true},
			{Code: "modules", Domain: "模块化", Name: "模块系统", Description: "module-info 与模块解析", Order: 13, Enabled: true},
		}
		for _, t := range defaultTopics {
			db.Create(&t)
		}
	}

	return db, nil
}
