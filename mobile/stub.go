//go:build !mobile

package mobile

// Dummy 在桌面构建中保持 mobile 包可被 go vet ./... 等工具加载
func Dummy() {}
