package config

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

func load(configPath string, out any) {
	if !fileExist(configPath) {
		panic(fmt.Sprintf("config file not exist, configPath=%v", configPath))
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	// todo 确认热更新时 out 的并发读取问题
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Println("配置文件变更")
		err := v.Unmarshal(out)
		if err != nil {
			panic(fmt.Errorf("viper unmarshal change config data: cast exception, err=%v \n", err))
		}
	})
	v.WatchConfig()
	// 加载配置
	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}
	err = v.Unmarshal(out)
	if err != nil {
		panic(err)
	}
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
