package rpc

import (
	"wirecodec/codec"
	"wirecodec/log"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// Name is the gRPC content subtype messages travel under, as in
// application/grpc+wirecodec.
const Name = "wirecodec"

var logger = log.WithModule("rpc-codec")

// Codec carries gRPC messages in the wire format instead of protobuf. Any
// value the codec package can encode may be used as a request or response.
type Codec struct {
	cfg codec.Config
}

var _ encoding.Codec = (*Codec)(nil)

func NewCodec(cfg codec.Config) *Codec {
	return &Codec{
		cfg: cfg,
	}
}

func (c *Codec) Marshal(v interface{}) ([]byte, error) {
	b, err := codec.Encode(v, c.cfg)
	if err != nil {
		logger.Debug("failed to marshal message", "err", err)
		return nil, errors.Wrap(err, "error marshaling message")
	}
	return b, nil
}

func (c *Codec) Unmarshal(data []byte, v interface{}) error {
	if err := codec.Decode(data, v, c.cfg); err != nil {
		logger.Debug("failed to unmarshal message", "err", err, "len", len(data))
		return errors.Wrap(err, "error unmarshaling message")
	}
	return nil
}

func (c *Codec) Name() string {
	return Name
}

func (c *Codec) Config() codec.Config {
	return c.cfg
}

// Register installs a Codec for cfg in gRPC's process-wide codec registry.
// Servers pick it up automatically for requests sent with CallOption.
// Register before creating clients or servers; the registry is not
// synchronized.
func Register(cfg codec.Config) *Codec {
	c := NewCodec(cfg)
	encoding.RegisterCodec(c)
	logger.Info("registered grpc codec", "name", Name, "config", cfg.String())
	return c
}

// CallOption selects the wire codec for a single call.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(Name)
}
