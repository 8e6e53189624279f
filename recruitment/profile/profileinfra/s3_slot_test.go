package profileinfra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/Abraxas-365/medjobb/recruitment/profile"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 stores objects by key, or fails every call with err
type fakeS3 struct {
	objects     map[string][]byte
	contentType string
	err         error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.contentType = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Slot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	slot := NewS3Slot(client, "medjobb-profiles", "student-profile.json")

	_, err := slot.Read(ctx)
	assert.True(t, errors.Is(err, profile.ErrSlotEmpty()))

	require.NoError(t, slot.Write(ctx, []byte(`{"first_name":"Ingrid"}`)))
	assert.Equal(t, "application/json", client.contentType)

	data, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"first_name":"Ingrid"}`, string(data))

	require.NoError(t, slot.Clear(ctx))
	_, err = slot.Read(ctx)
	assert.True(t, errors.Is(err, profile.ErrSlotEmpty()))

	// clearing twice is fine
	assert.NoError(t, slot.Clear(ctx))
}

func TestS3Slot_ErrorMapping(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name      string
		err       error
		wantEmpty bool
	}{
		{"typed NoSuchKey", &types.NoSuchKey{}, true},
		{"generic NotFound", &smithy.GenericAPIError{Code: "NotFound"}, true},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
		{"network", errors.New("dial tcp: connection refused"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newFakeS3()
			client.err = tc.err
			slot := NewS3Slot(client, "medjobb-profiles", "student-profile.json")

			_, err := slot.Read(ctx)
			if tc.wantEmpty {
				assert.True(t, errors.Is(err, profile.ErrSlotEmpty()))
				return
			}
			assert.True(t, errors.Is(err, profile.ErrSlotUnavailable()))
			assert.True(t, errors.Is(slot.Write(ctx, []byte("{}")), profile.ErrSlotUnavailable()))
			assert.True(t, errors.Is(slot.Clear(ctx), profile.ErrSlotUnavailable()))
		})
	}
}

func TestS3Slot_WithStore(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()

	store := profile.NewStore(ctx, NewS3Slot(client, "b", "k"))
	store.Login(ctx, profile.StudentProfile{
		FirstName: "Ingrid",
		LastName:  "Berg",
		Email:     "ingrid@example.no",
		Password:  "secret",
	})

	var stored map[string]any
	require.NoError(t, json.Unmarshal(client.objects["k"], &stored))
	assert.NotContains(t, stored, "password")

	// a second store over the same bucket starts signed in
	again := profile.NewStore(ctx, NewS3Slot(client, "b", "k"))
	p, ok := again.Current()
	require.True(t, ok)
	assert.Equal(t, "Ingrid Berg", p.GetFullName())
}
