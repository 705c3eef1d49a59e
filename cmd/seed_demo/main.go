package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/agrilink/farmwork/util"
)

// 演示数据：一个雇主、三名零工、两个岗位，方便本地联调匹配接口
type demoWorker struct {
	name      string
	phone     string
	location  string
	skills    string
	available bool
}

type demoJob struct {
	title         string
	skillRequired string
	location      string
	payRate       string
}

func main() {
	dbSource := os.Getenv("DB_SOURCE")
	if dbSource == "" {
		dbSource = "postgresql:///farmwork?sslmode=disable&host=/var/run/postgresql"
	}

	ctx := context.Background()

	conn, err := pgx.Connect(ctx, dbSource)
	if err != nil {
		log.Fatal("无法连接数据库:", err)
	}
	defer conn.Close(ctx)

	hashedPassword, err := util.HashPassword("secret123")
	if err != nil {
		log.Fatal("生成密码失败:", err)
	}

	var farmerID int64
	err = conn.QueryRow(ctx, `
		INSERT INTO farmers (name, phone, hashed_password, location, email)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (phone) DO UPDATE SET location = EXCLUDED.location
		RETURNING id`,
		"Jean Bosco", "+250788100001", hashedPassword, "-1.9441,30.0619", "jean@example.com",
	).Scan(&farmerID)
	if err != nil {
		log.Fatal("写入雇主失败:", err)
	}
	fmt.Printf("雇主 Jean Bosco id=%d\n", farmerID)

	workers := []demoWorker{
		{"Alice Uwase", "+250788200001", "-1.9500,30.0588", "planting, harvesting", true},
		{"Eric Mugisha", "+250788200002", "Musanze", "irrigation, weeding", true},
		{"Claudine Ingabire", "+250788200003", "-2.6000,29.7400", "harvesting", false},
	}

	for _, w := range workers {
		var id int64
		err = conn.QueryRow(ctx, `
			INSERT INTO workers (name, phone, hashed_password, location, skills, available)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (phone) DO UPDATE SET skills = EXCLUDED.skills, available = EXCLUDED.available
			RETURNING id`,
			w.name, w.phone, hashedPassword, w.location, w.skills, w.available,
		).Scan(&id)
		if err != nil {
			log.Fatal("写入零工失败:", err)
		}
		fmt.Printf("零工 %s id=%d\n", w.name, id)
	}

	jobs := []demoJob{
		{"Maize harvest", "harvesting", "-1.9536,30.0606", "3000 RWF/day"},
		{"Drip irrigation setup", "irrigation", "Musanze", "5000 RWF/day"},
	}

	for _, j := range jobs {
		var id int64
		err = conn.QueryRow(ctx, `
			INSERT INTO jobs (farmer_id, title, skill_required, location, pay_rate)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			farmerID, j.title, j.skillRequired, j.location, j.payRate,
		).Scan(&id)
		if err != nil {
			log.Fatal("写入岗位失败:", err)
		}
		fmt.Printf("岗位 %s id=%d\n", j.title, id)
	}

	fmt.Println("演示数据导入完成")
}
