package apierrors

import (
	"fmt"
	"strings"
)

// ValidationError 必填字段缺失错误
// Missing 保持字段在外部契约中的名称与出现顺序，错误文本逐一列出
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("faltan campos requeridos: %s", strings.Join(e.Missing, ", "))
}

// NewValidation 创建 ValidationError
func NewValidation(missing ...string) *ValidationError {
	return &ValidationError{Missing: missing}
}
