package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/enrique0rtiz/software-pagos/internal/dto"
	"github.com/enrique0rtiz/software-pagos/internal/model"
	"github.com/enrique0rtiz/software-pagos/internal/repository"
	"github.com/enrique0rtiz/software-pagos/pkg/apierrors"
)

// ── 测试辅助 ──

func setupTestClientService() (ClientService, *mockClientRepo) {
	clientRepo := newMockClientRepo()
	repo := &repository.Repository{
		Client:  clientRepo,
		Payment: newMockPaymentRepo(),
	}
	return NewClientService(repo, zap.NewNop()), clientRepo
}

// ── Create 测试 ──

func TestClientService_Create_Success(t *testing.T) {
	svc, _ := setupTestClientService()

	req := &dto.ClientRequest{
		Anio:            "2024-2025",
		Nombre:          "María",
		Apellidos:       "García López",
		FechaNacimiento: "05/03/2010",
		PagoMetodo:      "tarjeta",
	}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.ID == 0 {
		t.Error("创建后应返回持久化 ID")
	}
	if result.PagoMetodo == nil || *result.PagoMetodo != "tarjeta" {
		t.Errorf("期望 pago_metodo=tarjeta，实际 %v", result.PagoMetodo)
	}
	if result.FechaNacimiento == nil || *result.FechaNacimiento != "05/03/2010" {
		t.Errorf("期望出生日期 05/03/2010，实际 %v", result.FechaNacimiento)
	}
}

func TestClientService_Create_MissingFields(t *testing.T) {
	svc, clientRepo := setupTestClientService()

	req := &dto.ClientRequest{Nombre: "María"}

	_, err := svc.Create(context.Background(), req)
	var vErr *apierrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
	if len(vErr.Missing) != 2 {
		t.Errorf("期望缺失 2 个字段，实际 %v", vErr.Missing)
	}
	// 校验失败不得触发任何写入
	if len(clientRepo.clients) != 0 {
		t.Error("校验失败后不应写入任何行")
	}
}

func TestClientService_Create_WhitespaceOnlyIsMissing(t *testing.T) {
	svc, _ := setupTestClientService()

	req := &dto.ClientRequest{Anio: "  ", Nombre: "María", Apellidos: "García"}

	_, err := svc.Create(context.Background(), req)
	var vErr *apierrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("纯空白必填字段应视为缺失，实际: %v", err)
	}
}

// ── List 测试 ──

func TestClientService_List_FilterByAnio(t *testing.T) {
	svc, clientRepo := setupTestClientService()
	clientRepo.clients[1] = &model.Client{ID: 1, Anio: "2024-2025", Nombre: "Ana", Apellidos: "Ruiz"}
	clientRepo.clients[2] = &model.Client{ID: 2, Anio: "2023-2024", Nombre: "Luis", Apellidos: "Mora"}
	clientRepo.nextID = 3

	result, err := svc.List(context.Background(), &dto.ClientListRequest{Anio: "2024-2025"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 1 || result[0].Anio != "2024-2025" {
		t.Errorf("期望仅返回 2024-2025 学年的行，实际 %+v", result)
	}
}

func TestClientService_List_EmptyIsNotError(t *testing.T) {
	svc, _ := setupTestClientService()

	result, err := svc.List(context.Background(), &dto.ClientListRequest{})
	if err != nil {
		t.Fatalf("空表 List 应成功: %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("空表期望空切片，实际 %v", result)
	}
}

// ── GetByID 测试 ──

func TestClientService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestClientService()

	_, err := svc.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrClientNotFound) {
		t.Errorf("期望 ErrClientNotFound，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestClientService_Update_FullReplace(t *testing.T) {
	svc, clientRepo := setupTestClientService()
	observ := "nota previa"
	clientRepo.clients[1] = &model.Client{
		ID: 1, Anio: "2024-2025", Nombre: "Ana", Apellidos: "Ruiz",
		Observaciones: &observ, PagoEfectivo: true,
	}
	clientRepo.nextID = 2

	// 请求未携带 observaciones 与付款方式，整行替换后应清空
	req := &dto.ClientRequest{Anio: "2024-2025", Nombre: "Ana", Apellidos: "Ruiz Sanz"}

	result, err := svc.Update(context.Background(), 1, req)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Apellidos != "Ruiz Sanz" {
		t.Errorf("期望 apellidos 更新，实际 %s", result.Apellidos)
	}
	if result.Observaciones != nil {
		t.Error("未携带的可选字段应被清空")
	}
	if result.PagoMetodo != nil {
		t.Error("未携带付款方式时应清空全部标志")
	}

	stored := clientRepo.clients[1]
	if stored.Observaciones != nil || stored.PagoEfectivo {
		t.Error("存储行未按整行替换语义清空")
	}
}

func TestClientService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestClientService()

	req := &dto.ClientRequest{Anio: "2024-2025", Nombre: "Ana", Apellidos: "Ruiz"}
	_, err := svc.Update(context.Background(), 99, req)
	if !errors.Is(err, ErrClientNotFound) {
		t.Errorf("期望 ErrClientNotFound，实际: %v", err)
	}
}

func TestClientService_Update_ValidationBeforeWrite(t *testing.T) {
	svc, clientRepo := setupTestClientService()
	clientRepo.clients[1] = &model.Client{ID: 1, Anio: "2024-2025", Nombre: "Ana", Apellidos: "Ruiz"}
	clientRepo.nextID = 2

	_, err := svc.Update(context.Background(), 1, &dto.ClientRequest{})
	var vErr *apierrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
	if clientRepo.clients[1].Nombre != "Ana" {
		t.Error("校验失败后存储行不应改变")
	}
}

// ── Delete 测试 ──

func TestClientService_Delete_TwiceSecondNotFound(t *testing.T) {
	svc, clientRepo := setupTestClientService()
	clientRepo.clients[1] = &model.Client{ID: 1, Anio: "2024-2025", Nombre: "Ana", Apellidos: "Ruiz"}
	clientRepo.nextID = 2

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("首次 Delete 应成功: %v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("重复 Delete 期望 ErrClientNotFound，实际: %v", err)
	}
}

// ── 错误透传测试 ──

func TestClientService_RepoErrorPassesThrough(t *testing.T) {
	svc, clientRepo := setupTestClientService()
	clientRepo.failErr = errors.New("connection refused")

	if _, err := svc.List(context.Background(), &dto.ClientListRequest{}); err == nil {
		t.Error("存储错误应透传给调用方")
	}
}

// 日期字段经创建往返后保持 DD/MM/YYYY 表示
func TestClientService_DateSurvivesRoundTrip(t *testing.T) {
	svc, _ := setupTestClientService()

	req := &dto.ClientRequest{
		Anio: "2024-2025", Nombre: "Lucía", Apellidos: "Martín",
		FechaNacimiento: "29/02/2024",
	}

	created, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.FechaNacimiento == nil || *got.FechaNacimiento != "29/02/2024" {
		t.Errorf("日期往返失败: %v", got.FechaNacimiento)
	}
}
