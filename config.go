package finapigo

type Config struct {
	Listen   string `yaml:"listen"`
	Database struct {
		ConnectionString string `yaml:"conn_str"`
		SqlitePath       string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Limits struct {
		Write int64 `yaml:"write"`
		Read  int64 `yaml:"read"`
	} `yaml:"limits"`
}
