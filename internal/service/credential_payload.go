package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"user-vault/internal/dto"
	"user-vault/internal/model"
	"user-vault/pkg/responses"
)

// encodeSecret 序列化明文字段（不含 type/name），超过 maxBytes 时拒绝
// 不做 HTML 转义，按原始字节计算大小；非法 UTF-8 会被 json 替换为 U+FFFD，直接拒绝
func encodeSecret(secret model.Secret, maxBytes int) ([]byte, error) {
	if secret == nil {
		return nil, responses.New(responses.CodeBadRequest, "凭据内容不能为空")
	}
	for name, v := range secretFields(secret) {
		if !utf8.ValidString(v) {
			return nil, responses.New(responses.CodeBadRequest, fmt.Sprintf("字段 '%s' 不是合法的 UTF-8 文本", name))
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(secret); err != nil {
		return nil, responses.Wrap(responses.CodeBadRequest, "凭据内容序列化失败", err)
	}
	payload := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	if len(payload) > maxBytes {
		return nil, responses.New(responses.CodePayloadTooLarge, fmt.Sprintf("凭据内容过长，最多 %d 字节", maxBytes))
	}
	return payload, nil
}

// secretFields 明文字段名到值，key 与 JSON 字段名一致
func secretFields(secret model.Secret) map[string]string {
	switch s := secret.(type) {
	case model.LoginSecret:
		return map[string]string{"url": s.URL, "username": s.Username, "password": s.Password}
	case model.CardSecret:
		return map[string]string{
			"cardholderName": s.CardholderName,
			"number":         s.Number,
			"expMonth":       s.ExpMonth,
			"expYear":        s.ExpYear,
			"code":           s.Code,
		}
	case model.NoteSecret:
		return map[string]string{"content": s.Content}
	}
	return nil
}

// decodeSecret 按 kind 反序列化明文，字段与 kind 不符视为数据损坏
// 未知 kind 返回 (nil, nil)
func decodeSecret(kind model.CredentialKind, payload []byte) (model.Secret, error) {
	switch kind {
	case model.CredentialKindLogin:
		var s model.LoginSecret
		if err := strictUnmarshal(payload, &s); err != nil {
			return nil, err
		}
		return s, nil
	case model.CredentialKindCard:
		var s model.CardSecret
		if err := strictUnmarshal(payload, &s); err != nil {
			return nil, err
		}
		return s, nil
	case model.CredentialKindNote:
		var s model.NoteSecret
		if err := strictUnmarshal(payload, &s); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, nil
	}
}

func strictUnmarshal(payload []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("payload has trailing data")
	}
	return nil
}

// toCredentialResponse 公共字段 + 按明文类型展开字段
// secret 为 nil（未知 kind）时只返回公共字段
func toCredentialResponse(c *model.UserCredential, secret model.Secret) *dto.CredentialResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CredentialResponse{
		ID:             c.ID,
		Kind:           string(c.Kind),
		Name:           c.Name,
		UserID:         c.UserID,
		OrganizationID: c.OrganizationID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}

	switch s := secret.(type) {
	case model.LoginSecret:
		resp.LoginSecret = &s
	case model.CardSecret:
		resp.CardSecret = &s
	case model.NoteSecret:
		resp.NoteSecret = &s
	}
	return resp
}
