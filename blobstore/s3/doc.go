// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = dataset.WriteVectors(ctx, store, "points", vectors)
//	data, err := dataset.OpenVectors(ctx, store, "points")
//
// # Features
//
//   - Range reads for partition decoding
//   - CRC32C-checked single-part puts, multipart uploads for large partitions
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
