package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// 外部 JSON 的宽松标量类型。既有前端对布尔字段会发送 "si"/"no" 等字符串哨兵，
// 对金额字段会混发数字与字符串，这里在反序列化边界统一吸收，绝不因类型不符报错。

// FlexBool 宽松布尔
// 为 true 当且仅当输入是布尔 true，或大小写不敏感的 "si"/"true"/"1"/"yes"；
// 其余一切输入（null、""、"no"、数字等）均为 false
type FlexBool bool

// UnmarshalJSON 实现宽松解析
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		*b = false
		return nil
	}
	*b = FlexBool(CoerceBool(v))
	return nil
}

// Bool 转为原生布尔
func (b FlexBool) Bool() bool { return bool(b) }

// CoerceBool 布尔归一化规则（读写两侧共用）
func CoerceBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch strings.ToLower(val) {
		case "si", "true", "1", "yes":
			return true
		}
	}
	return false
}

// FlexDecimal 宽松可空小数
// 接受数字或十进制字符串；null、空串、0 等假值一律视为未设置（持久化为 NULL）
// 存储侧的 0 与 NULL 是不同含义，读取路径绝不把 NULL 补成 0
type FlexDecimal struct {
	Value *float64
}

// UnmarshalJSON 实现宽松解析
func (d *FlexDecimal) UnmarshalJSON(data []byte) error {
	d.Value = nil

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	switch val := v.(type) {
	case float64:
		if val != 0 {
			f := val
			d.Value = &f
		}
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f == 0 {
			return nil
		}
		d.Value = &f
	}
	return nil
}

// MarshalJSON 输出数字或 null
func (d FlexDecimal) MarshalJSON() ([]byte, error) {
	if d.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*d.Value)
}
