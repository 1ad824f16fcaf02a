package model

// Secret 凭据明文，按类型区分的和类型
// 只有 LoginSecret / CardSecret / NoteSecret 实现该接口
type Secret interface {
	Kind() CredentialKind
	isSecret()
}

// LoginSecret 网站登录
type LoginSecret struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CardSecret 银行卡
type CardSecret struct {
	CardholderName string `json:"cardholderName"`
	Number         string `json:"number"`
	ExpMonth       string `json:"expMonth"`
	ExpYear        string `json:"expYear"`
	Code           string `json:"code"`
}

// NoteSecret 安全笔记
type NoteSecret struct {
	Content string `json:"content"`
}

func (LoginSecret) Kind() CredentialKind { return CredentialKindLogin }
func (CardSecret) Kind() CredentialKind  { return CredentialKindCard }
func (NoteSecret) Kind() CredentialKind  { return CredentialKindNote }

func (LoginSecret) isSecret() {}
func (CardSecret) isSecret()  {}
func (NoteSecret) isSecret()  {}
