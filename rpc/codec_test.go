package rpc

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"wirecodec/codec"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

type echoReq struct {
	Text   string
	Repeat uint16
}

type echoRes struct {
	Text string
	Len  uint64
}

type echoer interface {
	Echo(ctx context.Context, req *echoReq) (*echoRes, error)
}

type echoServer struct{}

func (echoServer) Echo(_ context.Context, req *echoReq) (*echoRes, error) {
	out := strings.Repeat(req.Text, int(req.Repeat))
	return &echoRes{
		Text: out,
		Len:  uint64(len(out)),
	}, nil
}

var echoDesc = grpc.ServiceDesc{
	ServiceName: "wirec.test.Echo",
	HandlerType: (*echoer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Echo",
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
				req := new(echoReq)
				if err := dec(req); err != nil {
					return nil, err
				}
				return srv.(echoer).Echo(ctx, req)
			},
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "echo",
}

func TestCodec_MarshalUnmarshal(t *testing.T) {
	c := NewCodec(codec.NewConfig().WithVarInts())
	require.Equal(t, Name, c.Name())

	b, err := c.Marshal(&echoReq{Text: "hi", Repeat: 300})
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 'h', 'i', 0xfb, 0x2c, 0x01}, b)

	var req echoReq
	require.NoError(t, c.Unmarshal(b, &req))
	require.Equal(t, echoReq{Text: "hi", Repeat: 300}, req)

	err = c.Unmarshal(append(b, 0x00), &req)
	require.True(t, errors.Is(err, codec.ErrTrailingBytes))

	limited := NewCodec(codec.NewConfig().WithLimit(4))
	_, err = limited.Marshal(&echoReq{Text: "hi"})
	require.True(t, errors.Is(err, codec.ErrSizeLimit))
}

func TestCodec_GRPC(t *testing.T) {
	Register(codec.NewConfig().WithVarInts().WithLimit(1 << 20))

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := grpc.NewServer()
	srv.RegisterService(&echoDesc, echoServer{})
	go srv.Serve(lis)
	defer srv.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(ctx, lis.Addr().String(), grpc.WithInsecure(), grpc.WithBlock())
	require.NoError(t, err)
	defer conn.Close()

	res := new(echoRes)
	err = conn.Invoke(ctx, "/wirec.test.Echo/Echo", &echoReq{Text: "ab", Repeat: 3}, res, CallOption())
	require.NoError(t, err)
	require.Equal(t, "ababab", res.Text)
	require.EqualValues(t, 6, res.Len)
}
