// Package pb holds the generated repo service wire contract. Regenerate with
// protoc and the protoc-gen-go / protoc-gen-go-grpc plugins on PATH.
package pb

//go:generate protoc --proto_path=.. --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative pb/repo.proto
