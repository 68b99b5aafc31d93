package security

import (
	"testing"

	"github.com/go-think/openssl"
)

func TestZip_UnZip_往返一致(t *testing.T) {
	raw := []byte(`{"name":"turn.complete","seq":7}`)
	zipped, err := Zip(raw)
	if err != nil {
		t.Fatalf("Zip err=%v", err)
	}
	got, err := UnZip(zipped)
	if err != nil {
		t.Fatalf("UnZip err=%v", err)
	}
	if string(got) != string(raw) {
		t.Fatalf("期望解压后与原文一致，got=%q", got)
	}
}

func TestAesCBC_往返一致(t *testing.T) {
	key := []byte("0123456789abcdef")
	raw := []byte(`{"wealth":2,"supplies":2,"loyalty":1}`)
	enc, err := AesCBCEncrypt(raw, key, key, openssl.ZEROS_PADDING)
	if err != nil {
		t.Fatalf("encrypt err=%v", err)
	}
	dec, err := AesCBCDecrypt(enc, key, key, openssl.ZEROS_PADDING)
	if err != nil {
		t.Fatalf("decrypt err=%v", err)
	}
	if string(dec) != string(raw) {
		t.Fatalf("期望解密后与原文一致，got=%q", dec)
	}
}

func TestAward_ParseToken_往返(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := Award("camp-1")
	if err != nil {
		t.Fatalf("Award err=%v", err)
	}
	_, claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken err=%v", err)
	}
	if claims.CampaignID != "camp-1" {
		t.Fatalf("期望 claims.CampaignID==camp-1, got=%q", claims.CampaignID)
	}
}

func TestParseToken_密钥缺失时报错(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, _, err := ParseToken("whatever"); err == nil {
		t.Fatalf("期望密钥缺失时返回错误")
	}
}
