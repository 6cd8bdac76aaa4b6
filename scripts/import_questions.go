// 题库批量导入脚本
//
// 读取一个 JSON 文件（QuestionRequest 数组），逐条校验后写入数据库。
// 用于首次部署或大批量补充题目，日常单题维护走 /questions 接口。
//
// 用法: go run scripts/import_questions.go data/questions.json

package main

import (
	"encoding/json"
	"log"
	"os"

	"javacert_backend/internal/config"
	"javacert_backend/internal/repository"
	"javacert_backend/internal/service"
	"javacert_backend/pkg/database"
	"javacert_backend/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("用法: go run scripts/import_questions.go <questions.json>")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("无法读取题目文件: %v", err)
	}

	var requests []service.QuestionRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		log.Fatalf("解析题目文件失败: %v", err)
	}

	questionService := service.NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewTopicRepository(db),
		repository.NewReviewRepository(db),
	)

	imported := 0
	for i, req := range requests {
		if _, err := questionService.CreateQuestion(req); err != nil {
			log.Printf("第 %d 条导入失败: %v", i+1, err)
			continue
		}
		imported++
	}
	log.Printf("完成：成功导入 %d/%d 条题目", imported, len(requests))
}
