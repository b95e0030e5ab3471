package config

import (
	"flag"
)

const (
	DefaultTableFile  = "cfg_out.txt"
	DefaultRenormFile = "renorm_out.txt"
)

type Config struct {
	TableFile  string
	RenormFile string
}

func NewConfig() *Config {
	t := flag.String("TABLE_FILE", DefaultTableFile, "raw configuration table file")
	r := flag.String("RENORM_FILE", DefaultRenormFile, "renormalized sums file")
	flag.Parse()

	return &Config{
		TableFile:  *t,
		RenormFile: *r,
	}
}
