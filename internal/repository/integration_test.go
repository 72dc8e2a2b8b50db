//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/enrique0rtiz/software-pagos/internal/model"
	"github.com/enrique0rtiz/software-pagos/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=software_pagos_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	if err := testDB.AutoMigrate(&model.Client{}, &model.Payment{}); err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// setupClients 写入一组乱序客户行并返回清理函数
func setupClients(t *testing.T) (ids []int64, cleanup func()) {
	t.Helper()
	ctx := context.Background()

	rows := []*model.Client{
		{Anio: "2023-2024", Nombre: "Carlos", Apellidos: "Zapata"},
		{Anio: "2024-2025", Nombre: "Beatriz", Apellidos: "García"},
		{Anio: "2024-2025", Nombre: "Ana", Apellidos: "García"},
		{Anio: "2024-2025", Nombre: "Luis", Apellidos: "Alonso"},
	}
	for _, r := range rows {
		if err := testDB.WithContext(ctx).Create(r).Error; err != nil {
			t.Fatalf("创建客户失败: %v", err)
		}
		ids = append(ids, r.ID)
	}

	cleanup = func() {
		testDB.Where("id IN ?", ids).Delete(&model.Client{})
	}
	return
}

// setupPayments 写入一组付款行并返回清理函数
func setupPayments(t *testing.T) (ids []int64, cleanup func()) {
	t.Helper()
	ctx := context.Background()

	day1 := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 1, 16, 18, 30, 0, 0, time.UTC)

	rows := []*model.Payment{
		{Nombre: "Ana", Apellidos: "Ruiz", Motivo: "enero", Cantidad: 60, MetodoPago: "efectivo", FechaPago: day1},
		{Nombre: "Luis", Apellidos: "Mora", Motivo: "enero", Cantidad: 45, MetodoPago: "tarjeta", FechaPago: day2},
		{Nombre: "Marta", Apellidos: "Morales", Motivo: "febrero", Cantidad: 30, MetodoPago: "transferencia", FechaPago: day1.Add(2 * time.Hour)},
	}
	for _, r := range rows {
		if err := testDB.WithContext(ctx).Create(r).Error; err != nil {
			t.Fatalf("创建付款失败: %v", err)
		}
		ids = append(ids, r.ID)
	}

	cleanup = func() {
		testDB.Where("id IN ?", ids).Delete(&model.Payment{})
	}
	return
}

// containsID 判断一行是否属于本用例写入的数据，隔离并行残留
func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// 客户仓储测试
// ═══════════════════════════════════════════════════════════

// 排序契约：学年降序，姓升序，名升序
func TestClientRepo_List_Ordering(t *testing.T) {
	ids, cleanup := setupClients(t)
	defer cleanup()

	repo := repository.NewClientRepo(testDB)
	all, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}

	var got []string
	for _, c := range all {
		if containsID(ids, c.ID) {
			got = append(got, c.Anio+"/"+c.Apellidos+"/"+c.Nombre)
		}
	}

	want := []string{
		"2024-2025/Alonso/Luis",
		"2024-2025/García/Ana",
		"2024-2025/García/Beatriz",
		"2023-2024/Zapata/Carlos",
	}
	if len(got) != len(want) {
		t.Fatalf("期望 %d 行，实际 %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("第 %d 行期望 %s，实际 %s", i, want[i], got[i])
		}
	}
}

func TestClientRepo_List_FilterByAnio(t *testing.T) {
	ids, cleanup := setupClients(t)
	defer cleanup()

	repo := repository.NewClientRepo(testDB)
	rows, err := repo.List(context.Background(), "2023-2024")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}

	count := 0
	for _, c := range rows {
		if !containsID(ids, c.ID) {
			continue
		}
		count++
		if c.Anio != "2023-2024" {
			t.Errorf("过滤失效，返回了学年 %s", c.Anio)
		}
	}
	if count != 1 {
		t.Errorf("期望命中 1 行，实际 %d", count)
	}
}

func TestClientRepo_UpdateAndDelete_Vanished(t *testing.T) {
	ids, cleanup := setupClients(t)
	defer cleanup()

	repo := repository.NewClientRepo(testDB)
	ctx := context.Background()

	// 先删除，再更新同一 id：后到者拿到 NotFound 而不是静默成功
	if err := repo.Delete(ctx, ids[0]); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	err := repo.Update(ctx, &model.Client{ID: ids[0], Anio: "2023-2024", Nombre: "Carlos", Apellidos: "Zapata"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("更新已删除行期望 ErrRecordNotFound，实际: %v", err)
	}
	if err := repo.Delete(ctx, ids[0]); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("重复删除期望 ErrRecordNotFound，实际: %v", err)
	}
}

// 整行替换：未携带的可选列清为 NULL
func TestClientRepo_Update_FullReplace(t *testing.T) {
	ctx := context.Background()
	email := "ana@example.com"
	row := &model.Client{Anio: "2024-2025", Nombre: "Ana", Apellidos: "Ruiz", Email: &email, PagoEfectivo: true}
	if err := testDB.WithContext(ctx).Create(row).Error; err != nil {
		t.Fatalf("创建客户失败: %v", err)
	}
	defer testDB.Where("id = ?", row.ID).Delete(&model.Client{})

	repo := repository.NewClientRepo(testDB)
	if err := repo.Update(ctx, &model.Client{ID: row.ID, Anio: "2024-2025", Nombre: "Ana", Apellidos: "Ruiz"}); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Email != nil {
		t.Error("未携带的 email 应被清为 NULL")
	}
	if got.PagoEfectivo {
		t.Error("未携带的付款标志应被清为 false")
	}
}

// ═══════════════════════════════════════════════════════════
// 付款仓储测试
// ═══════════════════════════════════════════════════════════

func TestPaymentRepo_List_Ordering(t *testing.T) {
	ids, cleanup := setupPayments(t)
	defer cleanup()

	repo := repository.NewPaymentRepo(testDB)
	all, err := repo.List(context.Background(), repository.PaymentFilter{})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}

	var prev *time.Time
	for _, p := range all {
		if !containsID(ids, p.ID) {
			continue
		}
		if prev != nil && p.FechaPago.After(*prev) {
			t.Errorf("付款应按 fecha_pago 降序，%v 在 %v 之后", p.FechaPago, *prev)
		}
		fp := p.FechaPago
		prev = &fp
	}
}

// nombre 过滤：名或姓的大小写不敏感子串匹配
func TestPaymentRepo_List_FilterByNombre(t *testing.T) {
	ids, cleanup := setupPayments(t)
	defer cleanup()

	repo := repository.NewPaymentRepo(testDB)
	rows, err := repo.List(context.Background(), repository.PaymentFilter{Nombre: "mora"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}

	count := 0
	for _, p := range rows {
		if containsID(ids, p.ID) {
			count++
		}
	}
	// "mora" 命中姓氏 Mora 与 Morales 两行
	if count != 2 {
		t.Errorf("期望命中 2 行，实际 %d", count)
	}
}

// fecha 过滤：自然日精确匹配，忽略时刻
func TestPaymentRepo_List_FilterByFecha(t *testing.T) {
	ids, cleanup := setupPayments(t)
	defer cleanup()

	repo := repository.NewPaymentRepo(testDB)
	rows, err := repo.List(context.Background(), repository.PaymentFilter{Fecha: "2025-01-15"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}

	count := 0
	for _, p := range rows {
		if !containsID(ids, p.ID) {
			continue
		}
		count++
		if p.FechaPago.UTC().Format("2006-01-02") != "2025-01-15" {
			t.Errorf("日期过滤失效: %v", p.FechaPago)
		}
	}
	if count != 2 {
		t.Errorf("期望命中 2 行（同一自然日不同时刻），实际 %d", count)
	}
}

func TestPaymentRepo_List_FilterByMetodo(t *testing.T) {
	ids, cleanup := setupPayments(t)
	defer cleanup()

	repo := repository.NewPaymentRepo(testDB)
	rows, err := repo.List(context.Background(), repository.PaymentFilter{Metodo: "tarjeta"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}

	count := 0
	for _, p := range rows {
		if !containsID(ids, p.ID) {
			continue
		}
		count++
		if p.MetodoPago != "tarjeta" {
			t.Errorf("方式过滤失效: %s", p.MetodoPago)
		}
	}
	if count != 1 {
		t.Errorf("期望命中 1 行，实际 %d", count)
	}
}

func TestPaymentRepo_Delete_Twice(t *testing.T) {
	ids, cleanup := setupPayments(t)
	defer cleanup()

	repo := repository.NewPaymentRepo(testDB)
	ctx := context.Background()

	if err := repo.Delete(ctx, ids[0]); err != nil {
		t.Fatalf("首次 Delete 应成功: %v", err)
	}
	if err := repo.Delete(ctx, ids[0]); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("重复删除期望 ErrRecordNotFound，实际: %v", err)
	}
}
