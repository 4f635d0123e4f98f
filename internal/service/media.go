package service

// URLBuilder produces the URL prefix of an image bucket. It is satisfied by
// *media.URLBuilder.
type URLBuilder interface {
	URLHead(bucket string) string
}

func imageURL(urls URLBuilder, bucket, key string) string {
	if key == "" {
		return ""
	}
	return urls.URLHead(bucket) + key
}
