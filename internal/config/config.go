package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/erichartline/fantrax-scripts/internal/matcher"
)

// AppConfig 应用配置
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Mapping MappingConfig `toml:"mapping"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// MappingConfig 两个数据源的角色映射覆盖。值为候选字段标识数组，
// 空数组表示该数据源没有这个角色；未配置的角色沿用内置默认值。
type MappingConfig struct {
	Fantrax map[string][]string `toml:"fantrax"`
	IBW     map[string][]string `toml:"ibw"`
}

// Overrides 把配置文件里的映射覆盖转为匹配引擎的覆盖值
func (m MappingConfig) Overrides() *matcher.Overrides {
	if len(m.Fantrax) == 0 && len(m.IBW) == 0 {
		return nil
	}
	return &matcher.Overrides{
		Fantrax: toFieldSpecs(m.Fantrax),
		IBW:     toFieldSpecs(m.IBW),
	}
}

func toFieldSpecs(raw map[string][]string) map[string]matcher.FieldSpec {
	if len(raw) == 0 {
		return nil
	}
	specs := make(map[string]matcher.FieldSpec, len(raw))
	for role, ids := range raw {
		if len(ids) == 0 {
			specs[role] = nil // 空数组 = 角色不可用
			continue
		}
		specs[role] = matcher.FieldSpec(ids)
	}
	return specs
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20417,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从可执行文件同目录的 config.toml 加载配置。
// 启动目录下如有 .env 先行加载，FANTRAX_PORT / FANTRAX_DATA_DIR 环境变量
// 优先于配置文件。
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// 配置文件不存在，使用默认配置
	} else if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if v := os.Getenv("FANTRAX_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("FANTRAX_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}

	return config, nil
}

// SaveConfig 保存配置到可执行文件同目录的 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir 确保数据目录及其子目录存在
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	for _, subdir := range []string{"uploads", "exports"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}
	return dataDir, nil
}
