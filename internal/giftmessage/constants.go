package giftmessage

// 表单、元数据与列 key，均为稳定常量，不随标签或语言变化
const (
	FieldName     = "wcgm_gift_message"
	NonceName     = "wcgm_gift_message_nonce"
	NonceAction   = "wcgm_add_gift_message"
	HiddenMetaKey = "_wcgm_gift_message"
	UniqueKey     = "wcgm_unique"
	ColumnKey     = "wcgm_gift_message"

	DefaultMaxLength = 150
	Separator        = "; "
	Placeholder      = "&ndash;"

	AssetHandle = "wcgm-frontend"
	ScriptData  = "WCGM"
)
