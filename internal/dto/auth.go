package dto

// ── 认证模块请求 ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ── 认证模块响应 ──

// LoginResponse 登录成功响应
type LoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
}

// CheckResponse 认证状态探测响应（只读，无副作用）
type CheckResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}
