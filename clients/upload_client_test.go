package clients

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/codek7-services/codek7-backend/pb"
	"github.com/codek7-services/codek7-backend/video"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type captureServer struct {
	pb.UnimplementedRepoServiceServer

	mu                sync.Mutex
	uploads           [][]*pb.UploadVideoRequest
	failAfterMetadata bool
}

func (s *captureServer) UploadVideo(stream pb.RepoService_UploadVideoServer) error {
	var frames []*pb.UploadVideoRequest
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		frames = append(frames, req)
		if s.failAfterMetadata && len(frames) == 1 {
			return status.Error(codes.Internal, "storage exploded")
		}
	}
	s.mu.Lock()
	s.uploads = append(s.uploads, frames)
	s.mu.Unlock()
	return stream.SendAndClose(&pb.VideoMetadataResponse{Id: "stored"})
}

func (s *captureServer) lastUpload(t *testing.T) []*pb.UploadVideoRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.uploads)
	return s.uploads[len(s.uploads)-1]
}

func newTestClient(t *testing.T, server *captureServer) *RepoClient {
	t.Helper()
	listener := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	pb.RegisterRepoServiceServer(grpcServer, server)
	go func() {
		_ = grpcServer.Serve(listener)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewRepoClient(conn)
}

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artifact.mp4")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestUploadRoundTrip(t *testing.T) {
	server := &captureServer{}
	client := newTestClient(t, server)

	// 2.5 MiB: expect three chunk frames, the last one partial
	content := bytes.Repeat([]byte("abcde"), UploadChunkSize/2)
	path := writeTempFile(t, content)

	submitter := video.Submitter{UserID: "U", Title: "T", Description: "D"}
	resp, err := client.Upload(context.Background(), path, "vidA", submitter)
	require.NoError(t, err)
	require.Equal(t, "stored", resp.Id)

	frames := server.lastUpload(t)
	require.Len(t, frames, 4)

	metadata := frames[0].GetMetadata()
	require.NotNil(t, metadata, "first frame must be metadata")
	require.Equal(t, path, metadata.FileName)
	require.Equal(t, int64(len(content)), metadata.FileSize)
	require.Equal(t, "U", metadata.UserId)
	require.Equal(t, "T", metadata.Title)
	require.Equal(t, "D", metadata.Description)

	var reassembled []byte
	for i, frame := range frames[1:] {
		chunk := frame.GetChunk()
		require.NotNil(t, chunk)
		require.Equal(t, int32(i), chunk.ChunkNumber)
		require.Equal(t, "vidA", chunk.FileName, "chunk frames carry the video id")
		if i < 2 {
			require.Len(t, chunk.Data, UploadChunkSize)
		}
		reassembled = append(reassembled, chunk.Data...)
	}
	require.Equal(t, content, reassembled)
}

func TestUploadZeroByteFile(t *testing.T) {
	server := &captureServer{}
	client := newTestClient(t, server)
	path := writeTempFile(t, nil)

	_, err := client.Upload(context.Background(), path, "vidA", video.Submitter{})
	require.NoError(t, err)

	frames := server.lastUpload(t)
	require.Len(t, frames, 1, "zero-byte file sends metadata only")
	require.NotNil(t, frames[0].GetMetadata())
	require.Zero(t, frames[0].GetMetadata().FileSize)
}

func TestUploadMissingFile(t *testing.T) {
	client := newTestClient(t, &captureServer{})

	_, err := client.Upload(context.Background(), "does/not/exist.mp4", "vidA", video.Submitter{})
	require.ErrorContains(t, err, "failed to open")
}

func TestUploadSurfacesServerError(t *testing.T) {
	server := &captureServer{failAfterMetadata: true}
	client := newTestClient(t, server)
	path := writeTempFile(t, bytes.Repeat([]byte("x"), 100))

	_, err := client.Upload(context.Background(), path, "vidA", video.Submitter{})
	require.Error(t, err)
}
