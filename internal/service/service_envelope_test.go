package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/mock"
	"github.com/MKhiriev/go-qes-vault/internal/store"
	"github.com/MKhiriev/go-qes-vault/internal/validators"
	"github.com/MKhiriev/go-qes-vault/models"
)

func TestEnvelopeService_Store(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := mock.NewMockEnvelopeStorage(ctrl)
	svc := NewEnvelopeService(mockStorage, logger.Nop())
	ctx := context.Background()

	envelope := validEnvelope(intPtr(2))
	mockStorage.EXPECT().Put(ctx, "a.txt.encrypted", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, data []byte) error {
			var got models.Envelope
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, envelope, got)
			return nil
		},
	)

	require.NoError(t, svc.Store(ctx, models.EncryptedFile{Name: "a.txt.encrypted", Envelope: envelope}))
}

func TestEnvelopeService_Store_InvalidName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewEnvelopeService(mock.NewMockEnvelopeStorage(ctrl), logger.Nop())

	err := svc.Store(context.Background(), models.EncryptedFile{Name: "../a.encrypted"})
	assert.ErrorIs(t, err, validators.ErrInvalidFileName)
}

func TestEnvelopeService_FetchListDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := mock.NewMockEnvelopeStorage(ctrl)
	svc := NewEnvelopeService(mockStorage, logger.Nop())
	ctx := context.Background()

	mockStorage.EXPECT().Get(ctx, "a.encrypted").Return([]byte("{}"), nil)
	mockStorage.EXPECT().List(ctx).Return([]string{"a.encrypted"}, nil)
	mockStorage.EXPECT().Delete(ctx, "b.encrypted").Return(store.ErrEnvelopeNotFound)

	data, err := svc.Fetch(ctx, "a.encrypted")
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), data)

	names, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.encrypted"}, names)

	assert.ErrorIs(t, svc.Delete(ctx, "b.encrypted"), store.ErrEnvelopeNotFound)
}

func TestMarshalEnvelope_FieldSet(t *testing.T) {
	data, err := MarshalEnvelope(validEnvelope(intPtr(2)))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.ElementsMatch(t, []string{"ciphertext", "iv", "salt", "algorithm", "layers"}, keys(fields))
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
