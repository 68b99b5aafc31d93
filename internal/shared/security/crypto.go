package security

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/go-think/openssl"
)

// Zip 用 zlib 压缩数据（ws 帧：压缩(加密(json))）。
func Zip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnZip 解压 zlib 数据。
func UnZip(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// AesCBCEncrypt 对数据做 AES-CBC 加密。
func AesCBCEncrypt(data, key, iv []byte, padding string) ([]byte, error) {
	return openssl.AesCBCEncrypt(data, key, iv, padding)
}

// AesCBCDecrypt 对数据做 AES-CBC 解密。
func AesCBCDecrypt(data, key, iv []byte, padding string) ([]byte, error) {
	return openssl.AesCBCDecrypt(data, key, iv, padding)
}
