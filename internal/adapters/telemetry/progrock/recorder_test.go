package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/carth/internal/adapters/telemetry/progrock"
)

func TestRecord_VertexWriters(t *testing.T) {
	tape := vprogrock.NewTape()
	rec := progrock.NewRecorder(tape)

	_, vertex := rec.Record(context.Background(), "carthage bootstrap")
	require.NotNil(t, vertex)

	n, err := vertex.Stdout().Write([]byte("Fetching Alamofire\n"))
	require.NoError(t, err)
	require.Equal(t, 19, n)

	_, err = vertex.Stderr().Write([]byte("warning: shallow clone\n"))
	require.NoError(t, err)

	vertex.Complete(nil)
	require.NoError(t, rec.Close())
}

func TestRecord_CachedVertex(t *testing.T) {
	tape := vprogrock.NewTape()
	rec := progrock.NewRecorder(tape)

	_, vertex := rec.Record(context.Background(), "carthage bootstrap")
	vertex.Cached()
	vertex.Complete(nil)
	require.NoError(t, rec.Close())
}
