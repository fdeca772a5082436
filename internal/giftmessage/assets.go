package giftmessage

import (
	"embed"
	"io/fs"
)

//go:embed assets/frontend.js assets/frontend.css
var assetFS embed.FS

// Assets 店面脚本与样式
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
