package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env string `yaml:"env" env-default:"prod"`

	DBUser     string `yaml:"db_user" env-required:"true"`
	DBPassword string `yaml:"db_password" env-required:"false"`
	DBHost     string `yaml:"db_host" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env-default:"3306"`
	DBName     string `yaml:"db_name" env-required:"true"`
	ParseTime  bool   `yaml:"parse_time" env-default:"true"`

	Company `yaml:"company"`

	OutputDir string `yaml:"output_dir" env-default:"./exports"`
}

// Company is the contractor identity printed on report headers.
type Company struct {
	Name         string `yaml:"name" env-default:"Tri-State Painting, LLC"`
	AddressLine1 string `yaml:"address_line1" env-default:"612 West Main Street Unit 2"`
	AddressLine2 string `yaml:"address_line2" env-default:"Tilton, NH 03276"`
	Phone        string `yaml:"phone" env-default:"(603) 286-7657"`
	Fax          string `yaml:"fax"`
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
