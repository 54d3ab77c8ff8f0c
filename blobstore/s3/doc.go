// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("archives/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = archive.Save(ctx, store, "hubbard-4site.hsa", f)
//
// # Features
//
//   - Uploads through the SDK transfer manager (multipart for large archives)
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Custom endpoints for S3-compatible services
package s3
