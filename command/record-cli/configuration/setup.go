// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Connections     []string            `json:"connections"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// New - an empty configuration
func New(defaultIdentity string, testnet bool, connections []string) *Configuration {
	return &Configuration{
		DefaultIdentity: defaultIdentity,
		TestNet:         testnet,
		Connections:     connections,
		Identities:      make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	dec := json.NewDecoder(f)
	err = dec.Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - replace the configuration file, keeping the previous one as a backup
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	b, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}

	os.Remove(tempFile)

	err = writeFile(tempFile, append(b, '\n'))
	if nil != err {
		os.Remove(tempFile)
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

func writeFile(filename string, data []byte) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return err
	}
	_, err = f.Write(data)
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	return err
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}

	return &id, nil
}

// Key - find identity for a given name and convert to an account key
func (config *Configuration) Key(name string) (account.Key, error) {
	id, err := config.Identity(name)
	if nil != err {
		return account.Key{}, err
	}

	return account.KeyFromBase58(id.Account)
}

// Private - find identity decrypt all data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	private, _, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(seed, secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     private.Key().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	_, err := account.KeyFromBase58(acc)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
		Data:        "",
		Salt:        "",
	}

	return nil
}

// InfoIdentity - restricted view of an identity (excludes private items)
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	CanSign     bool   `json:"can_sign"`
}

// InfoConfiguration - restricted view of configuration
type InfoConfiguration struct {
	DefaultIdentity string         `json:"default_identity"`
	TestNet         bool           `json:"testnet"`
	Connections     []string       `json:"connections"`
	Identities      []InfoIdentity `json:"identities"`
}

// Info - the public parts of the configuration, sorted by name
func (config *Configuration) Info() *InfoConfiguration {
	info := &InfoConfiguration{
		DefaultIdentity: config.DefaultIdentity,
		TestNet:         config.TestNet,
		Connections:     config.Connections,
		Identities:      make([]InfoIdentity, 0, len(config.Identities)),
	}
	for name, id := range config.Identities {
		info.Identities = append(info.Identities, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			CanSign:     "" != id.Data,
		})
	}
	sort.Slice(info.Identities, func(i, j int) bool {
		return info.Identities[i].Name < info.Identities[j].Name
	})
	return info
}
