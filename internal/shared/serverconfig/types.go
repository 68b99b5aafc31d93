package serverconfig

type Config struct {
	MySQL      MySQLConfig      `yaml:"mysql" mapstructure:"mysql"`
	MongoDB    MongoDBConfig    `yaml:"mongodb" mapstructure:"mongodb"`
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	GRPCServer GRPCServerConfig `yaml:"grpcserver" mapstructure:"grpcserver"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Campaign   CampaignConfig   `yaml:"campaign" mapstructure:"campaign"`
	JWTSecret  string           `yaml:"jwt_secret" mapstructure:"jwt_secret"`
}

type MySQLConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	Charset  string `yaml:"charset" mapstructure:"charset"`
	MaxIdle  int    `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn  int    `yaml:"max_conn" mapstructure:"max_conn"`
}

type MongoDBConfig struct {
	URI             string `yaml:"uri" mapstructure:"uri"`
	Database        string `yaml:"database" mapstructure:"database"`
	ConnectTimeoutS int    `yaml:"connect_timeout_s" mapstructure:"connect_timeout_s"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

type GRPCServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type CampaignConfig struct {
	// EditSecret 是战役编辑锁口令，解锁成功后换发编辑 token。
	EditSecret string `yaml:"edit_secret" mapstructure:"edit_secret"`
	// FlushIntervalS 是脏数据落库的周期（秒），<=0 时取默认值。
	FlushIntervalS int `yaml:"flush_interval_s" mapstructure:"flush_interval_s"`
	// ServerID 参与雪花 ID 的节点位。
	ServerID int `yaml:"server_id" mapstructure:"server_id"`
	// DiceSeed 非 0 时固定骰子序列，仅用于联调和回放。
	DiceSeed int64 `yaml:"dice_seed" mapstructure:"dice_seed"`
}
