// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/counter"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/rpc/certificate"
	"github.com/bitmark-inc/recordd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func tlsConfig(t *testing.T) (*tls.Config, [32]byte) {
	dir, err := ioutil.TempDir("", "listeners")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	cer := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")
	err = certificate.MakeSelfSigned("test", cer, key, false, nil)
	if nil != err {
		t.Fatalf("make certificate error: %s", err)
	}

	config, fin, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if nil != err {
		t.Fatalf("get certificate error: %s", err)
	}
	return config, fin
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if nil != err {
		t.Fatalf("register with error: %s", err)
	}

	config, fin := tlsConfig(t)
	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, config, fin)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	c, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestNewRPCErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	testItems := []struct {
		name        string
		connections uint64
		listen      []string
		err         error
	}{
		{"no connections", 0, []string{"127.0.0.1:2130"}, fault.ErrMissingParameters},
		{"no listen", 1, []string{}, fault.ErrMissingParameters},
		{"bad host", 1, []string{"localhost:2130"}, fault.ErrInvalidIpAddress},
		{"no port", 1, []string{"127.0.0.1"}, fault.ErrInvalidIpAddress},
		{"empty", 1, []string{""}, fault.ErrInvalidIpAddress},
	}

	for _, item := range testItems {
		con := listeners.RPCConfiguration{
			MaximumConnections: item.connections,
			Listen:             item.listen,
		}
		count := counter.Counter(0)
		_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
		assert.Equal(t, item.err, err, item.name)
	}
}

func TestNewRPCAddressForms(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"*:2130", "[::1]:2130", "127.0.0.1:2130"},
	}
	count := counter.Counter(0)
	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Nil(t, err, "valid addresses rejected")
	assert.Equal(t, "*:2130", con.Listen[0], "configuration rewritten")
}
