package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"

	"github.com/enrique0rtiz/software-pagos/config"
)

// 会话模型：客户端只持有经 HMAC 签名的不透明会话 ID（Cookie），
// 会话状态保存在服务端的键控存储里，登录创建、登出或过期销毁。
// 存储后端可插拔：测试与单机用内存，生产可切 Redis。

// ErrNotFound 会话不存在或已过期
var ErrNotFound = errors.New("会话不存在或已过期")

// Data 服务端会话状态
type Data struct {
	Authenticated bool      `json:"authenticated"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"created_at"`
}

// Store 键控会话存储接口
type Store interface {
	// Get 读取会话，不存在或已过期返回 ErrNotFound
	Get(ctx context.Context, id string) (*Data, error)
	// Save 写入会话并设置过期时间
	Save(ctx context.Context, id string, data *Data, ttl time.Duration) error
	// Delete 销毁会话（会话不存在不视为错误）
	Delete(ctx context.Context, id string) error
}

// Manager 会话管理器
// 负责生成不透明 ID、用会话密钥签名/验签 Cookie 值、读写存储
type Manager struct {
	store Store
	codec *securecookie.SecureCookie
	cfg   *config.AuthConfig
}

// NewManager 创建会话管理器
// 仅对 Cookie 值做 HMAC 签名，不加密——ID 本身不携带任何敏感信息
func NewManager(cfg *config.AuthConfig, store Store) *Manager {
	codec := securecookie.New([]byte(cfg.SessionSecret), nil)
	codec.MaxAge(int(cfg.SessionTTL.Seconds()))

	return &Manager{
		store: store,
		codec: codec,
		cfg:   cfg,
	}
}

// Create 创建已认证会话，返回应写入 Cookie 的签名值
func (m *Manager) Create(ctx context.Context, username string) (string, error) {
	id := uuid.NewString()
	data := &Data{
		Authenticated: true,
		Username:      username,
		CreatedAt:     time.Now().UTC(),
	}

	if err := m.store.Save(ctx, id, data, m.cfg.SessionTTL); err != nil {
		return "", err
	}

	return m.codec.Encode(m.cfg.Cookie.Name, id)
}

// Resolve 验签 Cookie 值并读取会话状态
// 签名无效、会话不存在或已过期均返回 ErrNotFound
func (m *Manager) Resolve(ctx context.Context, cookieValue string) (*Data, error) {
	var id string
	if err := m.codec.Decode(m.cfg.Cookie.Name, cookieValue, &id); err != nil {
		return nil, ErrNotFound
	}
	return m.store.Get(ctx, id)
}

// Destroy 销毁 Cookie 对应的会话
// 签名无效说明没有对应会话，视为已销毁；存储删除失败原样返回
func (m *Manager) Destroy(ctx context.Context, cookieValue string) error {
	var id string
	if err := m.codec.Decode(m.cfg.Cookie.Name, cookieValue, &id); err != nil {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// CookieName 会话 Cookie 名称
func (m *Manager) CookieName() string { return m.cfg.Cookie.Name }

// Cookie 构造携带会话值的 HTTP Cookie
func (m *Manager) Cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.Cookie.Name,
		Value:    value,
		Path:     "/",
		Domain:   m.cfg.Cookie.Domain,
		MaxAge:   int(m.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Cookie.Secure,
		SameSite: parseSameSite(m.cfg.Cookie.SameSite),
	}
}

// ExpiredCookie 构造立即过期的清除 Cookie
func (m *Manager) ExpiredCookie() *http.Cookie {
	c := m.Cookie("")
	c.MaxAge = -1
	return c
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
