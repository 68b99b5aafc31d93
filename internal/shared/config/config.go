package config

import (
	"os"
	"path/filepath"
)

const defaultConfigRelPath = "configs/conf.yml"

// Load 读取配置文件并反序列化到 out。
//
// 约定：
// 1) 传入 cfgName（相对/绝对路径）则优先使用；
// 2) 否则从当前目录开始向上查找 `configs/conf.yml`。
func Load(cfgName string, out any) {
	curDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	if cfgName != "" {
		if filepath.IsAbs(cfgName) {
			load(cfgName, out)
			return
		}
		candidate := filepath.Join(curDir, cfgName)
		if fileExist(candidate) {
			load(candidate, out)
			return
		}
	}

	load(findConfigUpward(curDir), out)
}

func findConfigUpward(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("config file not exist, searched configs/conf.yml from: " + startDir)
		}
		dir = parent
	}
}
