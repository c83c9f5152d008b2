// Package file provides a file-based DataFetcher for the config package.
//
// The file is read when the constructor returned by NewFetcher runs, and
// every Fetch returns a private copy of those bytes:
//
//	fetcher, err := file.NewFetcher("/etc/app/config.yaml")()
//	if err != nil {
//	    // file missing, unreadable, or a directory
//	}
//	data, _ := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect directory paths.
package file
