package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/enrique0rtiz/software-pagos/internal/model"
	"github.com/enrique0rtiz/software-pagos/internal/repository"
)

// ── Mock ClientRepository ──

type mockClientRepo struct {
	clients map[int64]*model.Client
	nextID  int64
	failErr error // 非空时所有操作返回该错误
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{clients: make(map[int64]*model.Client), nextID: 1}
}

func (m *mockClientRepo) Create(_ context.Context, client *model.Client) error {
	if m.failErr != nil {
		return m.failErr
	}
	client.ID = m.nextID
	m.nextID++
	cp := *client
	m.clients[client.ID] = &cp
	return nil
}

func (m *mockClientRepo) GetByID(_ context.Context, id int64) (*model.Client, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	if c, ok := m.clients[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClientRepo) List(_ context.Context, anio string) ([]model.Client, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	var result []model.Client
	for _, c := range m.clients {
		if anio == "" || c.Anio == anio {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Anio != result[j].Anio {
			return result[i].Anio > result[j].Anio
		}
		if result[i].Apellidos != result[j].Apellidos {
			return result[i].Apellidos < result[j].Apellidos
		}
		return result[i].Nombre < result[j].Nombre
	})
	return result, nil
}

func (m *mockClientRepo) Update(_ context.Context, client *model.Client) error {
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.clients[client.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *client
	m.clients[client.ID] = &cp
	return nil
}

func (m *mockClientRepo) Delete(_ context.Context, id int64) error {
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.clients[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.clients, id)
	return nil
}

// ── Mock PaymentRepository ──

type mockPaymentRepo struct {
	payments map[int64]*model.Payment
	nextID   int64
	failErr  error
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[int64]*model.Payment), nextID: 1}
}

func (m *mockPaymentRepo) Create(_ context.Context, payment *model.Payment) error {
	if m.failErr != nil {
		return m.failErr
	}
	payment.ID = m.nextID
	m.nextID++
	cp := *payment
	m.payments[payment.ID] = &cp
	return nil
}

func (m *mockPaymentRepo) List(_ context.Context, filter repository.PaymentFilter) ([]model.Payment, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	var result []model.Payment
	for _, p := range m.payments {
		if filter.Nombre != "" {
			needle := strings.ToLower(filter.Nombre)
			if !strings.Contains(strings.ToLower(p.Nombre), needle) &&
				!strings.Contains(strings.ToLower(p.Apellidos), needle) {
				continue
			}
		}
		if filter.Fecha != "" && p.FechaPago.UTC().Format("2006-01-02") != filter.Fecha {
			continue
		}
		if filter.Metodo != "" && p.MetodoPago != filter.Metodo {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].FechaPago.After(result[j].FechaPago)
	})
	return result, nil
}

func (m *mockPaymentRepo) Delete(_ context.Context, id int64) error {
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.payments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.payments, id)
	return nil
}
