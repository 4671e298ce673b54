package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-qes-vault/models"
)

// CipherClient is the client API of qes.v1.CipherService. Every call is
// sent with the JSON codec.
type CipherClient struct {
	cc grpc.ClientConnInterface
}

func NewCipherClient(cc grpc.ClientConnInterface) *CipherClient {
	return &CipherClient{cc: cc}
}

func (c *CipherClient) Encrypt(ctx context.Context, in *models.EncryptionRequest, opts ...grpc.CallOption) (*models.Envelope, error) {
	out := new(models.Envelope)
	if err := c.cc.Invoke(ctx, EncryptFullMethod, in, out, c.callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CipherClient) Decrypt(ctx context.Context, in *models.DecryptionRequest, opts ...grpc.CallOption) (*models.DecryptionResponse, error) {
	out := new(models.DecryptionResponse)
	if err := c.cc.Invoke(ctx, DecryptFullMethod, in, out, c.callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CipherClient) callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
