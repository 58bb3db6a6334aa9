package cli

const (
	FlagHome          = "home"
	FlagEndian        = "endian"
	FlagIntEncoding   = "int-encoding"
	FlagLimit         = "limit"
	FlagDepthLimit    = "depth-limit"
	FlagAllowTrailing = "allow-trailing"
)
