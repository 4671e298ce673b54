package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-qes-vault/models"
)

const (
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "qes.v1.CipherService"

	EncryptFullMethod = "/" + ServiceName + "/Encrypt"
	DecryptFullMethod = "/" + ServiceName + "/Decrypt"
)

// CipherServer is the server API of qes.v1.CipherService.
type CipherServer interface {
	Encrypt(ctx context.Context, request *models.EncryptionRequest) (*models.Envelope, error)
	Decrypt(ctx context.Context, request *models.DecryptionRequest) (*models.DecryptionResponse, error)
}

// cipherServiceDesc plays the role of a generated _ServiceDesc.
var cipherServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CipherServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Encrypt",
			Handler:    encryptHandler,
		},
		{
			MethodName: "Decrypt",
			Handler:    decryptHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "qes/v1/cipher.proto",
}

// RegisterCipherServer registers srv on s.
func RegisterCipherServer(s grpc.ServiceRegistrar, srv CipherServer) {
	s.RegisterService(&cipherServiceDesc, srv)
}

func encryptHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.EncryptionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CipherServer).Encrypt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EncryptFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CipherServer).Encrypt(ctx, req.(*models.EncryptionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func decryptHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.DecryptionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CipherServer).Decrypt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DecryptFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CipherServer).Decrypt(ctx, req.(*models.DecryptionRequest))
	}
	return interceptor(ctx, in, info, handler)
}
