package bankapp

type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Vault struct {
		BcryptCost int `yaml:"bcrypt_cost"`
	} `yaml:"vault"`
	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
}
