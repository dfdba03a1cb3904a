package model

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cast"
)

// 网红监控接口来自数仓，数值字段可能是字符串或 null

// FlexInt 宽松解析的整数
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		// 小数形式的字符串，例如 "12.0"
		fl, ferr := cast.ToFloat64E(v)
		if ferr != nil {
			return err
		}
		n = int64(fl)
	}
	*f = FlexInt(n)
	return nil
}

// FlexFloat 宽松解析的浮点数
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return err
	}
	*f = FlexFloat(n)
	return nil
}

// FlexString 数字 ID 统一转成字符串
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return err
	}
	*f = FlexString(s)
	return nil
}

func decodeLoose(data []byte) (interface{}, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if n, ok := v.(json.Number); ok {
		return n.String(), nil
	}
	return v, nil
}
