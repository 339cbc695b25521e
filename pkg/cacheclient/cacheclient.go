package cacheclient

import (
	"context"
	"github.com/QuangTung97/go-memcache/memcache"
	"github.com/QuangTung97/mailing-scheduler/pkg/keylock"
	"time"
)

// leaseTTL in seconds, a lease of a crashed owner expires after it
const leaseTTL = 300

// Client is a memcached backed keylock.Locker.
// A lock is a lease item: the first lease get wins, others see the Z flag until it is deleted.
type Client struct {
	client *memcache.Client
	prefix string
}

var _ keylock.Locker = &Client{}

// New ...
func New(addr string, numConns int, prefix string) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
		prefix: prefix,
	}
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	pipe := c.client.Pipeline()
	defer pipe.Finish()
	return pipe.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// TryLock ...
func (c *Client) TryLock(_ context.Context, key string) (func(), bool, error) {
	key = c.prefix + key

	pipe := c.client.Pipeline()
	defer pipe.Finish()

	resp, err := pipe.MGet(key, memcache.MGetOptions{
		N:   leaseTTL,
		CAS: true,
	})()
	if err != nil {
		return nil, false, err
	}

	if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagW == 0 {
		return nil, false, nil
	}

	cas := resp.CAS
	return func() {
		c.release(key, cas)
	}, true, nil
}

// release deletes the lease only while it still carries the cas of the owner,
// an expired lease may already be owned by another process
func (c *Client) release(key string, cas uint64) {
	pipe := c.client.Pipeline()
	defer pipe.Finish()
	_, _ = pipe.MDel(key, memcache.MDelOptions{CAS: cas})()
}
